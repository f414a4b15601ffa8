package main

import "github.com/frahmantamala/hrms-backend/cmd"

func main() {
	cmd.Execute()
}
