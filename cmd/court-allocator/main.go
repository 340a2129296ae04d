// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Error("court-allocator failed")
		os.Exit(1)
	}
}
