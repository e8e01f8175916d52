package cli

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/osse101/GardenPlanner_Go/internal/planner"
)

// Plan keys, named after the request's JSON fields
const (
	keySaveCode       = "save_code"
	keyDays           = "harvest.days"
	keyLevel          = "harvest.level"
	keyIncludeReplant = "harvest.include_replant"
	keyStarSeeds      = "harvest.use_star_seeds"
	keyGrowthBoost    = "harvest.use_growth_boost"
	keyReplantCost    = "harvest.include_replant_cost"
	keyStrategy       = "strategy"
)

// planFlags are the flags shared by every command that runs a plan
type planFlags struct {
	planPath string
}

// register adds the plan flags to cmd
func (p *planFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&p.planPath, "plan", "p", "", "Plan file (YAML or JSON)")
	f.StringP("code", "c", "", "Garden save code")
	f.Int("days", 0, "Days to simulate (0: until every crop has finished)")
	f.Int("level", 0, "Gardening level, raises the star seed chance")
	f.Bool("replant", false, "Replant crops that finish within the horizon")
	f.Bool("star-seeds", false, "Replant with star seeds")
	f.Bool("growth-boost", false, "Apply the growth boost to replanted crops")
	f.Bool("replant-cost", false, "Charge replant seeds against the harvest")
	f.String("strategy", "", "Crafter strategy: dedicated or open")
}

var flagKeys = map[string]string{
	"code":         keySaveCode,
	"days":         keyDays,
	"level":        keyLevel,
	"replant":      keyIncludeReplant,
	"star-seeds":   keyStarSeeds,
	"growth-boost": keyGrowthBoost,
	"replant-cost": keyReplantCost,
	"strategy":     keyStrategy,
}

// load merges the plan file with the command's flags into a request.
// A flag overrides the file only when it was set explicitly.
func (p *planFlags) load(cmd *cobra.Command) (planner.Request, error) {
	v := viper.New()

	if p.planPath != "" {
		v.SetConfigFile(p.planPath)
		if err := v.ReadInConfig(); err != nil {
			return planner.Request{}, fmt.Errorf("failed to read plan %s: %w", p.planPath, err)
		}
	}

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return planner.Request{}, fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}

	return decodePlan(v)
}

// decodePlan unmarshals a viper tree into a request, using the request's JSON
// tags as keys and TextUnmarshaler for enum fields such as the strategy
func decodePlan(v *viper.Viper) (planner.Request, error) {
	var req planner.Request
	err := v.Unmarshal(&req, func(c *mapstructure.DecoderConfig) {
		c.TagName = "json"
		c.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err != nil {
		return planner.Request{}, fmt.Errorf("invalid plan: %w", err)
	}

	req.SaveCode = strings.TrimSpace(req.SaveCode)
	if req.SaveCode == "" {
		return planner.Request{}, fmt.Errorf("no save code: pass --code or set save_code in the plan file")
	}
	return req, nil
}
