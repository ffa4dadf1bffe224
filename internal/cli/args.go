package cli

// ArgsSource yields the process arguments as UTF-8 text.
// Element 0 is the program path or name.
type ArgsSource interface {
	Args() ([]string, error)
}

// ProcessArgs is the runtime-provided argument vector, usually os.Args.
// Its Args method is implemented per platform.
type ProcessArgs []string
