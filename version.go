package stars

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/drossy/stars.Version=...".
var Version = "0.1.0-dev"
