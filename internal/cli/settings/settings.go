package settings

import (
	"fmt"
	"sort"

	"github.com/julianstephens/mindlog/internal/cli"
	"github.com/julianstephens/mindlog/internal/storage"
)

type SettingsCmd struct {
	List bool              `help:"List current settings."`
	Set  map[string]string `help:"Update settings, e.g. --set default_user=alice --set insight_window=14."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if len(c.Set) == 0 {
		if !c.List {
			fmt.Println("No changes specified. Use --list to view settings or --set key=value to update them.")
			fmt.Println()
		}
		fmt.Println("Current Settings:")
		for _, kv := range storage.SettingsPairs(settings) {
			fmt.Printf("  %-15s %s\n", kv[0]+":", kv[1])
		}
		return nil
	}

	keys := make([]string, 0, len(c.Set))
	for k := range c.Set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := storage.SetSetting(&settings, k, c.Set[k]); err != nil {
			return err
		}
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}

type UsersCmd struct{}

func (c *UsersCmd) Run(ctx *cli.Context) error {
	users, err := ctx.Store.GetUsers()
	if err != nil {
		return fmt.Errorf("failed to get users: %w", err)
	}
	if len(users) == 0 {
		fmt.Println("No users found")
		return nil
	}
	def := ctx.Settings().DefaultUser
	for _, u := range users {
		marker := "  "
		if u == def {
			marker = "* "
		}
		fmt.Println(marker + u)
	}
	return nil
}
