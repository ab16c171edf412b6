//go:build bitcrafte_release

package memalloc

// DevelopmentBuild is false under -tags bitcrafte_release: checksum
// verification, poison probing, and hard assertions are compiled out, and
// violating an invariant they would have caught is undefined behaviour.
const DevelopmentBuild = false
