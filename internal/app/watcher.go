package app

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"marketlens/internal/config"
	"marketlens/pkg/logging"
)

// watchConfig reloads the configuration when its file changes and applies
// the settings that can change at runtime. Today that is the upstream API
// key; transport and address changes still need a restart.
func (a *Application) watchConfig(ctx context.Context) error {
	path, err := config.ConfigFilePath(a.configDir)
	if err != nil {
		logging.Warn("Bootstrap", "Config watching disabled: %v", err)
		<-ctx.Done()
		return ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Warn("Bootstrap", "Config watching disabled: %v", err)
		<-ctx.Done()
		return ctx.Err()
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save and
	// a watch on the old inode would go quiet.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		logging.Warn("Bootstrap", "Config watching disabled: %v", err)
		<-ctx.Done()
		return ctx.Err()
	}
	logging.Debug("Bootstrap", "Watching %s for configuration changes", path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			a.reloadConfig()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn("Bootstrap", "Config watcher error: %v", err)
		}
	}
}

func (a *Application) reloadConfig() {
	cfg, err := config.Load(a.configDir)
	if err != nil {
		logging.Warn("Bootstrap", "Ignoring config reload: %v", err)
		return
	}

	if cfg.Upstream.APIKey != a.cfg.Upstream.APIKey {
		a.client.SetAPIKey(cfg.Upstream.APIKey)
		a.cfg.Upstream.APIKey = cfg.Upstream.APIKey
		logging.Info("Bootstrap", "Upstream API key updated from configuration")
	}

	if cfg.Server != a.cfg.Server {
		logging.Warn("Bootstrap", "Server settings changed on disk; restart to apply")
	}
}
