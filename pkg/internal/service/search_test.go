package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/yeisme/monthvault/pkg/internal/service"
)

func TestSearch(t *testing.T) {
	mfs := newDataFS(t, map[string]string{
		"data/may/mermay.txt": "May 1 - Mermaid\nMay 07: Sketch a selkie\n\n  may 17 - Kraken  \nJune 7 - not this month\n",
		"data/may/other.txt":  "May 7 - single digit\n",
	})

	svc := newService(mfs)

	t.Run("padded day", func(t *testing.T) {
		resp := svc.Search(context.Background(), "MAY", "07")

		if !resp.Success || resp.Month != "may" || resp.Day != "07" {
			t.Fatalf("unexpected response %+v", resp)
		}

		if len(resp.Results) != 2 {
			t.Fatalf("expected 2 results, got %+v", resp.Results)
		}

		first := resp.Results[0]
		if first.File != "mermay.txt" || first.LineNumber != 2 || first.Matches[0] != "Sketch a selkie" {
			t.Errorf("unexpected first result %+v", first)
		}

		second := resp.Results[1]
		if second.File != "other.txt" || second.Matches[0] != "single digit" {
			t.Errorf("unexpected second result %+v", second)
		}

		if len(resp.LoadedFiles) != 2 {
			t.Errorf("unexpected loaded files %v", resp.LoadedFiles)
		}
	})

	t.Run("trimmed line", func(t *testing.T) {
		resp := svc.Search(context.Background(), "may", "17")

		if len(resp.Results) != 1 {
			t.Fatalf("expected 1 result, got %+v", resp.Results)
		}

		r := resp.Results[0]
		if r.LineNumber != 4 || r.LineContent != "may 17 - Kraken" || r.Matches[0] != "Kraken" {
			t.Errorf("unexpected result %+v", r)
		}
	})

	t.Run("no match", func(t *testing.T) {
		resp := svc.Search(context.Background(), "may", "30")

		if !resp.Success || resp.Results == nil || len(resp.Results) != 0 {
			t.Errorf("expected empty results, got %+v", resp)
		}
	})

	t.Run("missing month", func(t *testing.T) {
		resp := svc.Search(context.Background(), "dec", "01")

		if resp.Success || resp.Error == "" || len(resp.LoadedFiles) != 0 {
			t.Errorf("expected failure, got %+v", resp)
		}
	})
}

func TestTodayQuery(t *testing.T) {
	month, day := service.TodayQuery(time.Date(2025, time.September, 3, 12, 0, 0, 0, time.UTC))

	if month != "sep" || day != "03" {
		t.Errorf("expected sep/03, got %s/%s", month, day)
	}
}
