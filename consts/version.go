package consts

const Name = "nyaa-indexer"

// These will be injected via -ldflags at build time
var (
	gitSha string = "unknown"
	gitTag string = "unknown"
)

func GetBuildInfo() map[string]string {
	return map[string]string{
		"name":     Name,
		"revision": gitSha,
		"version":  gitTag,
	}
}

// Version returns the release tag followed by the short revision.
func Version() string {
	sha := gitSha
	if len(sha) > 7 {
		sha = sha[:7]
	}
	return gitTag + " (" + sha + ")"
}
