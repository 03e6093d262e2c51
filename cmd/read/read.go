// cmd/read/read.go
/*
Copyright © 2025 Code Monkey Cybersecurity
Contact: git@cybermonkey.net.au

This file is part of Hermes.

This software is dual-licensed under the Do No Harm License
and the GNU Affero General Public License v3 (AGPL-3.0-or-later).
You may use, modify, and distribute it under the terms of either license.

See LICENSE.agpl and LICENSE.dnh for full details.
*/

package read

import (
	"github.com/spf13/cobra"
)

// ReadCmd represents the base read command
var ReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Read resources",
	Long:  `Read information out of CSV rosters, the directory server, and the effective hermes configuration.`,
}
