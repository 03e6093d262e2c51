// pkg/shared/constants.go

package shared

const (
	HermesID = "hermes"

	HermesLogDir = "/var/log/hermes/"
	HermesLogs   = HermesLogDir + "hermes.log"
	// #nosec G101 - This is a log file path, not a hardcoded credential
	HermesLogsPWD = "./hermes.log"
)

const (
	// Permission modes (in octal)
	DirPermStandard        = 0755
	RuntimeDirPerms        = 0750
	FilePermOwnerRWX       = 0700
	RuntimeFilePerms       = 0640
	FilePermStandard       = 0644
	FilePermOwnerReadWrite = 0600
	FilePermReadOnly       = 0444
	OwnerReadOnly          = 0400
)

const (
	DefaultConfigFilename = "config.yaml"
	DefaultEnvFilename    = ".env"
)

const (
	// Directory lookup defaults
	DefaultDirectoryPort    = 389
	DefaultDirectoryTLSPort = 636

	// Mail defaults
	DefaultSMTPPort = 587
)
