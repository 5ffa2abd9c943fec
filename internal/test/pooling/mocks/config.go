package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Config is a mock of pooling.Config
type Config struct {
	mock.Mock
}

func (m *Config) PoolSize() int {
	args := m.Called()
	return args.Int(0)
}

func (m *Config) RegionSize() int {
	args := m.Called()
	return args.Int(0)
}
