package main

import (
	"context"

	"github.com/hendrikderyck/steven-car-company/cmd/aanbod-cli/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
