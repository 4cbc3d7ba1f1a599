package review

import (
	"errors"
	"fmt"

	"github.com/julianstephens/mindlog/internal/cli"
	"github.com/julianstephens/mindlog/internal/predict"
	"github.com/julianstephens/mindlog/internal/storage"
)

// MsgNoPrediction is shown when no model can be trained or loaded
const MsgNoPrediction = "No trained model available or not enough data. Keep logging complete entries (at least 5) and try again."

type PredictCmd struct {
	User    string `short:"u" help:"User to predict for (default: the default_user setting)."`
	Retrain bool   `help:"Refit the model from the full history."`
}

func (c *PredictCmd) Run(ctx *cli.Context) error {
	user := c.User
	if user == "" {
		user = ctx.Settings().DefaultUser
	}
	if user == "" {
		return errors.New("select a user with --user or set default_user")
	}

	history, err := ctx.Store.GetEntries(storage.Filter{User: user})
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}

	value, ok, err := predict.New(ctx.ModelsDir).PredictNextDay(user, history, c.Retrain)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println(MsgNoPrediction)
		return nil
	}
	fmt.Printf("Predicted next-day focus for %s: %.2f\n", user, value)
	return nil
}
