//go:build !bitcrafte_release

package memalloc

// DevelopmentBuild gates assertions, checksum verification, and poison-byte
// probing. The default build configuration is the development one; pass
// -tags bitcrafte_release to build the release variant in
// build_release.go.
const DevelopmentBuild = true
