package commands

import (
	"fmt"
	"runtime"

	"github.com/NielsdaWheelz/codexspec/internal/version"
)

// Version implements `codexspec version`.
func Version(env *Env) error {
	body := fmt.Sprintf("CodexSpec version %s\nGo: %s\nPlatform: %s/%s",
		version.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	env.UI.Panel("Version Info", body)
	return nil
}
