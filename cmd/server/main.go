package main

import (
	_ "github.com/easayliu/yadisk-relay/docs"
)

// @title Yandex.Disk Relay API
// @version 1.0
// @description 基于Gin框架的Yandex.Disk公开分享中转服务
// @BasePath /api/v1
// @schemes http https
func main() {
	Execute()
}
