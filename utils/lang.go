package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

func InitI18NBundle() {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	b.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), "en.yaml"))
	bundle = b
}

// NewLocalizer returns a localizer for the given language. Without an
// initialized bundle, messages resolve to their in-code defaults.
func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		return i18n.NewLocalizer(i18n.NewBundle(language.English), lang)
	}
	return i18n.NewLocalizer(bundle, lang)
}
