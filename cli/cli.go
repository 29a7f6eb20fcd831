package cli

import (
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog"

	"pkm-forge/dex"
	"pkm-forge/ui"
)

type (
	Args struct {
		Create      *CreateCmd      `arg:"subcommand:create"`
		Read        *ReadCmd        `arg:"subcommand:read"`
		Verify      *VerifyCmd      `arg:"subcommand:verify"`
		Inject      *InjectCmd      `arg:"subcommand:inject"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`

		Dex     string `help:"path to a name table JSON file; bundled tables are used when empty"`
		Verbose bool   `help:"enable debug logging"`
	}
	CreateCmd struct {
		Out     string `arg:"required" help:"path to output record file" placeholder:"output"`
		Profile string `help:"path to a TOML defaults profile"`
		Strict  bool   `help:"reject out-of-range values instead of truncating"`

		Species     *string `help:"species name or number"`
		Item        *string `help:"held item name or number"`
		TID         *string `help:"trainer ID"`
		SID         *string `help:"secret ID"`
		EXP         *string `help:"experience points"`
		Ability     *string `help:"ability name or number"`
		PID         *string `help:"personality value, hex or int"`
		Nature      *string `help:"nature name or number"`
		Gender      *string `help:"0=male 1=female 2=genderless"`
		Form        *string `help:"form number"`
		MetLevel    *string `help:"met level"`
		MetLocation *string `help:"met location code"`
		EggLocation *string `help:"egg location code"`
		Ball        *string `help:"ball name or number"`
		Nickname    *string `help:"nickname, truncated to 12 bytes"`
		OT          *string `help:"original trainer name, truncated to 12 bytes"`
		Level       *string `help:"current level"`
		IVs         *string `help:"6 comma-separated values" placeholder:"31,31,31,31,31,31"`
		EVs         *string `help:"6 comma-separated values" placeholder:"0,0,0,0,0,0"`
		Moves       *string `help:"4 comma-separated names or numbers"`
		Language    *string `help:"language code"`
	}
	ReadCmd struct {
		Path string `arg:"positional,required" help:"path to a record file"`
		JSON bool   `help:"print the field listing as JSON"`
	}
	VerifyCmd struct {
		Path string `arg:"positional,required" help:"path to a record file"`
	}
	InjectCmd struct {
		Path    string `arg:"positional,required" help:"path to a record file"`
		Host    string `arg:"required" help:"remote process host"`
		Port    int    `help:"remote process port" default:"5000"`
		Address string `help:"target memory address" default:"0x042DA8E8"`
	}
	InteractiveCmd struct{}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Gotta forge 'em all.\n",
			"A CLI utility to create, inspect, verify, and inject 344-byte",
			"Gen-8 stored creature records.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if args.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	d := dex.Default()
	if args.Dex != "" {
		loaded, err := dex.Load(args.Dex)
		if err != nil {
			log.Fatal().Err(err).Msg("loading name tables failed")
		}
		d = loaded
	}

	err := error(nil)
	switch {
	case args.Create != nil:
		err = runCreate(*args.Create, d, log)
	case args.Read != nil:
		err = runRead(*args.Read, d)
	case args.Verify != nil:
		err = runVerify(*args.Verify, log)
	case args.Inject != nil:
		err = runInject(*args.Inject, log)
	case args.Interactive != nil:
		err = ui.Start(d)
	default:
		parser.WriteHelp(os.Stdout)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
