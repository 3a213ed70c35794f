package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/secretary/internal/secretary/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := secretary(); err != nil {
		logrus.Fatal(err)
	}
}

func secretary() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
