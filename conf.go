package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/maelvls/dungeonname/errutil"
	"github.com/maelvls/dungeonname/logutil"
	"github.com/maelvls/dungeonname/namegen"
	"github.com/maelvls/dungeonname/vocabfile"
	"github.com/spf13/cobra"
)

// ToolConf is read from the environment first, then flags that were
// explicitly passed take precedence.
type ToolConf struct {
	APIURL    string `env:"DUNGEONNAME_API_URL" envDefault:"http://localhost:8080"`
	Listen    string `env:"DUNGEONNAME_LISTEN" envDefault:":8080"`
	VocabPath string `env:"DUNGEONNAME_VOCAB"`
	Debug     bool   `env:"DUNGEONNAME_DEBUG"`
}

func getToolConfig(cmd *cobra.Command) (ToolConf, error) {
	conf, err := env.ParseAs[ToolConf]()
	if err != nil {
		return ToolConf{}, errutil.Fixable(fmt.Errorf("while reading environment variables: %w", err))
	}

	overrideFromFlag(cmd, "api-url", &conf.APIURL)
	overrideFromFlag(cmd, "listen", &conf.Listen)
	overrideFromFlag(cmd, "vocab", &conf.VocabPath)
	if f := cmd.Flags().Lookup("debug"); f != nil && f.Changed {
		conf.Debug = f.Value.String() == "true"
	}

	if conf.Debug {
		logutil.EnableDebug = true
	}
	return conf, nil
}

func overrideFromFlag(cmd *cobra.Command, name string, dst *string) {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return
	}
	*dst = f.Value.String()
}

// loadVocabulary returns the built-in tables unless a vocabulary file is
// configured.
func loadVocabulary(conf ToolConf) (namegen.Vocabulary, error) {
	if conf.VocabPath == "" {
		return namegen.DefaultVocabulary(), nil
	}

	v, err := vocabfile.Load(conf.VocabPath)
	if err != nil {
		return namegen.Vocabulary{}, fmt.Errorf("while loading vocabulary: %w", err)
	}
	logutil.Debugf("loaded vocabulary from %s: %d adjectives, %d agreeing nouns, %d plain nouns, %d qualifiers",
		conf.VocabPath, len(v.Adjectives), len(v.AgreeingNouns), len(v.PlainNouns), len(v.Qualifiers))
	return v, nil
}

// newGenerator is called once per command, before any name is generated, so
// that a broken vocabulary stops the command right away.
func newGenerator(conf ToolConf, opts ...namegen.Option) (*namegen.Generator, error) {
	v, err := loadVocabulary(conf)
	if err != nil {
		return nil, err
	}
	g, err := namegen.New(v, opts...)
	if err != nil {
		return nil, errutil.Fixable(err)
	}
	return g, nil
}
