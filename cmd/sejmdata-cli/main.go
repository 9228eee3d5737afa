package main

import (
	"context"
	"sejmdata-backend/cmd/sejmdata-cli/commands"
	"sejmdata-backend/lib/telemetry"
)

func main() {
	ctx := context.Background()
	telemetry.SetupFromEnv(ctx, "sejmdata-cli")
	telemetry.InstrumentPerfStats(ctx)
	commands.ExecuteContext(ctx)
}
