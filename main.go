package main

import (
	"github.com/sirupsen/logrus"

	"order-api/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		logrus.WithError(err).Fatal("order-api failed")
	}
}
