// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Files []string // positional file arguments, in the order given
	Batch string   `flag:"batch" usage:"batch process files matching pattern (e.g. *.nds)"`
	Tool  string   `flag:"tool" usage:"name or path of the ndstool binary" default:"ndstool"`
}

// Flags contains behavior options.
type Flags struct {
	HeaderSize int  `flag:"n" usage:"number of header bytes to checksum" default:"512"`
	Native     bool `flag:"native" usage:"read the game code from the ROM header instead of running ndstool"`
	Progress   bool `flag:"progress" usage:"show a progress bar on stderr"`
	Debug      bool `flag:"debug" usage:"enable debug logging"`
	Quiet      bool `flag:"q" usage:"quiet mode"`
}

// Program options of the tools.
type Program struct {
	Parameters
	Flags
}
