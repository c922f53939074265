package main

import "github.com/zhangxiao6776/fluid-engine-dev/cmd"

func main() {
	cmd.Execute()
}
