package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespace(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "single", path: "models", want: "Models"},
		{name: "module path", path: "github.com/acme/go-shop/models", want: "GithubCom.Acme.GoShop.Models"},
		{name: "underscores", path: "internal/order_items", want: "Internal.OrderItems"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Namespace(tt.path))
		})
	}
}

func TestEnumMember(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		constant string
		want     string
	}{
		{name: "prefixed", typeName: "Status", constant: "StatusOpen", want: "Open"},
		{name: "underscore", typeName: "Status", constant: "Status_Closed", want: "Closed"},
		{name: "unprefixed", typeName: "Status", constant: "Pending", want: "Pending"},
		{name: "prefix inside a word", typeName: "Status", constant: "Statuses", want: "Statuses"},
		{name: "only the type name", typeName: "Status", constant: "Status", want: "Status"},
		{name: "unexported", typeName: "level", constant: "levelDebug", want: "Debug"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EnumMember(tt.typeName, tt.constant))
		})
	}
	assert.Equal(t, "Level", Pascal("level"))
	assert.Equal(t, "", Pascal(""))
}
