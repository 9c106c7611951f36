// Package main 启动应用程序
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yeisme/monthvault/pkg/cmd"
)

//	@title			monthvault API
//	@version		1.0.0
//	@description	monthvault 按月份目录读取文本文件，以文件名为键、逐行内容为值返回 JSON.

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

//	@contact.name	yeisme
//	@contact.email	yefun2004@gmail.com.

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "monthvault:", err)
		os.Exit(1)
	}
}
