package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/dukaan/config"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, "user_data.txt", config.UserStore())
	assert.Equal(t, "product_list.txt", config.ProductStore())
	assert.Equal(t, "history.txt", config.HistoryStore())
	assert.Equal(t, "admin_data.txt", config.AdminStore())
	assert.Equal(t, "local", config.AppEnv())
	assert.True(t, config.ColorEnabled())
}
