package version

var (
	Version   string = "dev"
	GitCommit string = "unknown"
)

func GetVersion() string {
	return Version
}

func GetFullVersion() string {
	return Version + " (commit: " + GitCommit + ")"
}
