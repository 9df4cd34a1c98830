package main

import (
	"context"

	"github.com/felipemarinho97/nyaa-indexer/cmd/nyaa/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
