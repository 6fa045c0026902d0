package main

import (
	"context"
	"fmt"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/neurlang/speechfront/model"
	"github.com/spf13/pflag"
)

type arch struct {
	extractor string
	attention string
}

func main() {
	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	extractor := pflag.String("extractor", "", "listener front-end: vgg or ds2 (default: print both reference models)")
	attention := pflag.String("attention", "dot", "speller attention: dot, loc or multi-head")
	inputSize := pflag.Int("input-size", 80, "feature channels per frame")
	numClasses := pflag.Int("num-classes", 2038, "output vocabulary size")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	archs := []arch{{"vgg", "dot"}, {"ds2", "loc"}}
	if *extractor != "" {
		archs = []arch{{*extractor, *attention}}
	}

	for _, a := range archs {
		m, err := build(*inputSize, *numClasses, a)
		if err != nil {
			logger.Errorf(ctx, "unable to build %+v: %v", a, err)
			belt.Flush(ctx)
			os.Exit(1)
		}
		logger.Debugf(ctx, "built %+v", a)

		fmt.Println(m)
		fmt.Printf("Total params: %d\n\n", model.NumParams(m))
	}
}

func build(inputSize, numClasses int, a arch) (*model.ListenAttendSpell, error) {
	lc := model.DefaultListenerConfig(inputSize, 256, "cpu")
	lc.Extractor = a.extractor
	listener, err := model.NewListener(lc)
	if err != nil {
		return nil, err
	}

	sc := model.DefaultSpellerConfig(numClasses, 151, 512, 1, 2)
	sc.AttnMechanism = a.attention
	speller, err := model.NewSpeller(sc)
	if err != nil {
		return nil, err
	}

	return model.NewListenAttendSpell(listener, speller)
}
