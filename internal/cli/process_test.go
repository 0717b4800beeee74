package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func newProcessFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("process", pflag.ContinueOnError)
	fs.String("input", "./raw_txt", "")
	fs.Bool("no-cache", false, "")
	return fs
}

func TestStringSetting_ExplicitFlagWins(t *testing.T) {
	defer viper.Reset()
	viper.Set("input.text_dir", "/from/config")

	fs := newProcessFlags()
	if err := fs.Set("input", "/from/flag"); err != nil {
		t.Fatal(err)
	}
	if got := stringSetting(fs, "input", "input.text_dir", "/from/flag"); got != "/from/flag" {
		t.Errorf("expected flag value to win, got %q", got)
	}
}

func TestStringSetting_ConfigFillsUnsetFlag(t *testing.T) {
	defer viper.Reset()
	viper.Set("input.text_dir", "/from/config")

	fs := newProcessFlags()
	if got := stringSetting(fs, "input", "input.text_dir", "./raw_txt"); got != "/from/config" {
		t.Errorf("expected config value for unset flag, got %q", got)
	}
}

func TestStringSetting_DefaultWhenNothingSet(t *testing.T) {
	defer viper.Reset()

	fs := newProcessFlags()
	if got := stringSetting(fs, "input", "input.text_dir", "./raw_txt"); got != "./raw_txt" {
		t.Errorf("expected flag default, got %q", got)
	}
}

func TestBoolSetting_ConfigFillsUnsetFlag(t *testing.T) {
	defer viper.Reset()
	viper.Set("cache.enabled", false)

	fs := newProcessFlags()
	if got := boolSetting(fs, "no-cache", "cache.enabled", true); got {
		t.Errorf("expected config value for unset flag, got %v", got)
	}
}

func TestBoolSetting_ExplicitFlagWins(t *testing.T) {
	defer viper.Reset()
	viper.Set("cache.enabled", true)

	fs := newProcessFlags()
	if err := fs.Set("no-cache", "true"); err != nil {
		t.Fatal(err)
	}
	if got := boolSetting(fs, "no-cache", "cache.enabled", false); got {
		t.Errorf("expected flag value to win, got %v", got)
	}
}
