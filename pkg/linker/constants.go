// pkg/linker/constants.go
package linker

// DynamicLinkerPath is the fixed interpreter path baked into dynamically
// linked Kush executables.
const DynamicLinkerPath = "/sbin/ldyldo"

// CRT startup objects. Exactly one entry object is selected per link.
const (
	// CRTDefault is the regular executable entry object
	CRTDefault = "crt0.o"
	// CRTStatic is the static executable entry object
	CRTStatic = "crt0T.o"
	// CRTShared is the entry object for shared libraries and PIEs
	CRTShared = "crt0S.o"
	// CRTInit carries _init/_fini for static executables
	CRTInit = "crti.o"
)

// Linker flag literals
const (
	// relro is not supported by the platform yet
	flagNoRelro = "-znorelro"

	flagPIE           = "-pie"
	flagStrip         = "-s"
	flagStaticBind    = "-Bstatic"
	flagDynamicBind   = "-Bdynamic"
	flagShareable     = "-Bshareable"
	flagExportDynamic = "-export-dynamic"
	flagDynamicLinker = "-dynamic-linker"
	flagNewDTags      = "--enable-new-dtags"
	flagOutput        = "-o"
	flagUndefined     = "-u"

	flagPushState = "--push-state"
	flagPopState  = "--pop-state"
	flagAsNeeded  = "--as-needed"
)

// Default libraries
const (
	// OpenLibM provides the math library on Kush
	libOpenLibM = "-lopenlibm"
	libC        = "-lc"
)

// LTO plugin options, gold-plugin style
const (
	ltoOptLevel = "-plugin-opt=O2"
	ltoOptThin  = "-plugin-opt=thinlto"
)
