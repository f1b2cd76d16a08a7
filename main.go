package main

import "github.com/ResiduaLiu/mfem/cmd"

func main() {
	cmd.Execute()
}
