// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	assert.True(t, Contains([]int{1, 2, 3}, 2))
	assert.False(t, Contains([]int{1, 2, 3}, 4))
	assert.False(t, Contains([]string{}, "a"))
}

func TestGenerateUUID(t *testing.T) {
	id := GenerateUUID()
	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")
	assert.True(t, IsValidTraceID(id))
	assert.NotEqual(t, id, GenerateUUID())
}

func TestIsValidTraceID(t *testing.T) {
	assert.False(t, IsValidTraceID(""))
	assert.False(t, IsValidTraceID("zz000000000000000000000000000000"))
	assert.True(t, IsValidTraceID("0123456789abcdef0123456789ABCDEF"))
}
