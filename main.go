/*
main.go

Copyright © 2025 Code Monkey Cybersecurity
Contact: git@cybermonkey.net.au

This file is part of Hermes.

This software is dual-licensed under the Do No Harm License
and the GNU Affero General Public License v3 (AGPL-3.0-or-later).
You may use, modify, and distribute it under the terms of either license.

See LICENSE.agpl and LICENSE.dnh for full details.
*/
package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/hermes/cmd"
	hermes "github.com/CodeMonkeyCybersecurity/hermes/pkg/hermes_cli"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/hermes/pkg/telemetry"
)

func main() {
	logger.InitializeWithFallback()

	if err := telemetry.Init(shared.HermesID); err != nil {
		logger.L().Warn("Telemetry init failed, continuing without spans", zap.Error(err))
	}

	// Ctrl-C cancels the command context, flushes spans and logs, and exits
	// 130; a second interrupt forces an immediate exit.
	shutdown := hermes.NewSignalHandler(context.Background())
	shutdown.RegisterCleanup(logger.Sync)
	shutdown.RegisterCleanup(func() error { return telemetry.Shutdown(context.Background()) })

	cmd.Execute(shutdown.Context())
	shutdown.Stop()
}
