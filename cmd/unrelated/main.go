// Command unrelated picks a maximal set of mutually unrelated samples from a
// cohort, preferring cases over controls over samples of unknown status.
//
//	unrelated -pheno pheno.txt -case_value 1 -kinship ukb_rel.dat \
//	  -samples cohort.fam -output unrelated.txt
//
// Flags may also come from a TOML file given with -config. Flags set on the
// command line win over the file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/unrelated/config"
	"github.com/katalvlaran/unrelated/pipeline"
)

func main() {
	os.Exit(command{}.RunCommand(os.Args[0], os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type command struct{}

// RunCommand parses args, runs one selection and returns the exit status:
// 0 on success, 2 for usage or configuration errors, 1 when the run fails.
func (command) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	var err error
	defer func() {
		if err != nil {
			logger.Error(err)
		}
	}()

	var flagged config.Config
	flags := flag.NewFlagSet(prog, flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.String("config", "", "TOML `file` with run settings")
	verbose := flags.Bool("v", false, "log every acceptance and disqualification")
	flags.StringVar(&flagged.Pheno, "pheno", "", "phenotype `file` (FID IID status)")
	flags.StringVar(&flagged.CaseValue, "case_value", "", "status `value` that marks a case")
	flags.Float64Var(&flagged.PiHat, "pihat", config.DefaultPiHat, "relatedness `threshold`; pairs with kinship >= pihat/2 are related")
	flags.StringVar(&flagged.Kinship, "kinship", "", "kinship table `file` (ukb_rel.dat, KING .kin0, PLINK .genome)")
	flags.StringVar(&flagged.KinshipMatrix, "kinship_matrix", "", "square kinship matrix `file` (.npy)")
	flags.StringVar(&flagged.KinshipIDs, "kinship_ids", "", "sample `file` naming the rows of -kinship_matrix")
	flags.StringVar(&flagged.Samples, "samples", "", "cohort sample `file` (IID list or .fam)")
	flags.StringVar(&flagged.Output, "output", "", "output `file` of selected IIDs; .gz compresses")
	flags.StringVar(&flagged.Report, "report", "", "optional run summary `file` (key<TAB>value)")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	}
	if flags.NArg() > 0 {
		err = fmt.Errorf("unexpected arguments: %v", flags.Args())
		return 2
	}

	cfg := config.Default()
	if *configFile != "" {
		if cfg, err = config.Load(*configFile); err != nil {
			return 2
		}
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pheno":
			cfg.Pheno = flagged.Pheno
		case "case_value":
			cfg.CaseValue = flagged.CaseValue
		case "pihat":
			cfg.PiHat = flagged.PiHat
		case "kinship":
			cfg.Kinship = flagged.Kinship
		case "kinship_matrix":
			cfg.KinshipMatrix = flagged.KinshipMatrix
		case "kinship_ids":
			cfg.KinshipIDs = flagged.KinshipIDs
		case "samples":
			cfg.Samples = flagged.Samples
		case "output":
			cfg.Output = flagged.Output
		case "report":
			cfg.Report = flagged.Report
		}
	})
	if err = cfg.Validate(); err != nil {
		flags.Usage()
		return 2
	}

	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if _, err = pipeline.Run(cfg, logger); err != nil {
		return 1
	}

	return 0
}
