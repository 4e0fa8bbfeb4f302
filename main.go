package main

import (
	"context"
	"log"
	"os"

	"github.com/ChainSafe/hexdis/cmd"
)

func main() {
	app := cmd.NewApp(os.Args[0])
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
