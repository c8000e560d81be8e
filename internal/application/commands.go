package application

type PackageFilter string

const (
	PackageFilterAll    PackageFilter = ""
	PackageFilterThird  PackageFilter = "third"
	PackageFilterSystem PackageFilter = "system"
)

func (f PackageFilter) Valid() bool {
	switch f {
	case PackageFilterAll, PackageFilterThird, PackageFilterSystem:
		return true
	default:
		return false
	}
}

func (f PackageFilter) args() []string {
	args := []string{"shell", "pm", "list", "packages"}
	switch f {
	case PackageFilterThird:
		args = append(args, "-3")
	case PackageFilterSystem:
		args = append(args, "-s")
	}
	return args
}

type Options struct {
	// Program is the bridge binary name or path.
	Program string
	// AmbiguityMarker is matched as an exact substring of the bridge stderr.
	AmbiguityMarker string
	// MaxRetries caps how many times one command is replayed after resolving
	// an ambiguity. At least one replay always happens: zero and negative
	// values select DefaultMaxRetries.
	MaxRetries int
}

const (
	DefaultProgram         = "adb"
	DefaultAmbiguityMarker = "adb: more than one device/emulator"
	DefaultMaxRetries      = 1
)

func (o Options) withDefaults() Options {
	if o.Program == "" {
		o.Program = DefaultProgram
	}
	if o.AmbiguityMarker == "" {
		o.AmbiguityMarker = DefaultAmbiguityMarker
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = DefaultMaxRetries
	}
	return o
}
