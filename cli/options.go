package cli

// Options holds the pliectl command line.
type Options struct {
	Config      string `short:"c" long:"config" description:"config file path"`
	URL         string `short:"u" long:"url" description:"backend base url (overrides config)"`
	SessionFile string `short:"s" long:"session" description:"cookie session file, keeps you logged in between runs"`
	Verbose     bool   `short:"v" long:"verbose" description:"debug logging"`

	Args struct {
		Command string   `positional-arg-name:"command" description:"login | logout | whoami | schedule | groups | notifications | export-attendance"`
		Rest    []string `positional-arg-name:"args"`
	} `positional-args:"yes"`
}
