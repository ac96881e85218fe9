package main

import (
	"flag"
	"log/slog"
	"os"
	"time"
	"unsafe"

	"github.com/DigitalSmile/ffm-io/internal/configuration"
	"github.com/DigitalSmile/ffm-io/internal/rawio"
	"github.com/DigitalSmile/ffm-io/internal/schema"
	"github.com/lmittmann/tint"
	"golang.org/x/sys/unix"
)

// GPIO_GET_CHIPINFO_IOCTL from /usr/include/linux/gpio.h; command-number
// encoding is supplied here by the caller, not by the I/O core.
const gpioGetChipInfoIoctl = 0x8044b401

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	device     = flag.String("device", "/dev/gpiochip0", "path of the GPIO character device")
	configFile = flag.String("config", "", "optional configuration file overriding the defaults")
)

func setupLogging() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}),
	))
}

func chipInfoIoctl(fd int, buf []byte) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(gpioGetChipInfoIoctl), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return errno
	}

	return nil
}

func run() error {
	devicePath := *device
	openFlag := -1

	if *configFile != "" {
		configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

		envMap, err := configHandler.ReadGeneric(*configFile)
		if err != nil {
			return err
		}

		if path := configHandler.MapKeyToString(envMap, configuration.DeviceKey); path != "" {
			devicePath = path
		}
		openFlag = configHandler.MapKeyToInt(envMap, configuration.OpenFlagKey)
	}

	ioHandler := rawio.NewHandler(&schema.Unix{})

	var d rawio.Descriptor
	var err error

	if openFlag >= 0 {
		d, err = ioHandler.OpenWithFlag(devicePath, openFlag)
	} else {
		d, err = ioHandler.Open(devicePath)
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := ioHandler.Close(d); err != nil {
			slog.Warn("Failed to close device.", "err", err)
		}
	}()

	buf := make([]byte, schema.ChipInfoLayout().Width())
	if err := chipInfoIoctl(d.Fd(), buf); err != nil {
		return err
	}

	info, err := schema.UnmarshalChipInfo(buf)
	if err != nil {
		return err
	}

	slog.Info("Queried GPIO chip.",
		"device", devicePath,
		"chip", info,
		"lines", info.Lines,
	)

	return nil
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	flag.Parse()
	setupLogging()

	if err := run(); err != nil {
		slog.Error("Failed to query GPIO chip.",
			"err", err,
		)
		ExitCode = 1
	}
}
