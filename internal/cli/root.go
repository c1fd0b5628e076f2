package cli

import "github.com/spf13/cobra"

const long = `Checks Swagger 2 and OpenAPI 3 definitions against the API gateway's
acceptance rules and reports diagnostics and a run summary.

The first argument is either a literal definition (JSON or YAML) or
"location:<path>" naming a definition file or a directory to walk.

The optional second argument selects the validation level:
  0  classify and parse only, no diagnostics
  1  legacy diagnostics
  2  all diagnostics (default)

Defaults are read from ./oasgate.yaml or the file named by $OASGATE_CONFIG.`

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "oasgate <definition | location:path> [level]",
		Short:   "oasgate - gateway acceptance checks for Swagger and OpenAPI definitions",
		Long:    long,
		Version: "1.0.0",
		Args:    cobra.RangeArgs(1, 2),

		RunE: runValidate,
	}

	return root
}
