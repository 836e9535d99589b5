package main

import (
	"banks-etl/cmd/banks-etl/commands"
	"banks-etl/lib/serviceutil"
)

func main() {
	ctx, cancel := serviceutil.SignalContext()
	defer cancel()
	commands.ExecuteContext(ctx)
}
