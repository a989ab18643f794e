package main

import (
	"errors"
	"os"

	"standards-backend/cmd/standards-cli/commands"
	"standards-backend/lib/serviceutil"
	"standards-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	_, err := telemetry.SetupFromEnv(ctx, "standards-cli")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		serviceutil.Fatal("failed to setup telemetry", err)
	}

	commands.ExecuteContext(ctx)
}
