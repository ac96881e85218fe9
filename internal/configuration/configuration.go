package configuration

import (
	"strconv"
)

const (
	// DeviceKey is the configuration key naming the device node path.
	DeviceKey = "GPIO_DEVICE"

	// OpenFlagKey is the configuration key naming the open flag; both
	// decimal and 0x-prefixed values are accepted.
	OpenFlagKey = "GPIO_OPEN_FLAG"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

type Handler struct {
	GenericHandler genericConfigProvider
}

func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
	}
}

func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericHandler.Read(filenames...)
}

func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

func (c *Handler) MapKeyToInt(envMap map[string]string, key string) int {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return -1
	}
	intValue, err := strconv.ParseInt(value, 0, 32)
	if err != nil {
		return -1
	}

	return int(intValue)
}
