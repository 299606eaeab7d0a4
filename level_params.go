package lz4

// Compression level bounds. Levels up to fastLevelMax use the greedy parser.
const (
	fastLevelMax = 2
	hcLevelMin   = 3
	hcLevelMax   = 12

	// DefaultHighLevel is the level used by Backend.HighCompressor.
	DefaultHighLevel = 9
)

// compressLevelParams holds internal parameters for one hash chain level.
// All fields are unexported; the type is used only inside the package.
type compressLevelParams struct {
	maxAttempts int  // chain candidates examined per position
	lazy        bool // try position+1 before committing a match
}

// hcLevels defines parameters for levels 3-12.
var hcLevels = [hcLevelMax - hcLevelMin + 1]compressLevelParams{
	{4, false},
	{8, false},
	{16, false},
	{32, true},
	{64, true},
	{128, true},
	{256, true},
	{1024, true},
	{4096, true},
	{16384, true},
}

// clampLevel maps any requested level onto the supported range: values below 1
// select the greedy parser, values above 12 select level 12.
func clampLevel(level int) int {
	return min(max(level, 1), hcLevelMax)
}

// levelParams returns the hash chain parameters for a clamped level >= hcLevelMin.
func levelParams(level int) compressLevelParams {
	return hcLevels[level-hcLevelMin]
}
