package commands

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"quicklaunch/internal/discovery"
	"quicklaunch/internal/eventbus"
	"quicklaunch/internal/launch"
	"quicklaunch/internal/ui"
)

func runLauncher(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	bus := eventbus.New()
	defer bus.Close()

	cfg, opts, err := loadSettings(bus)
	if err != nil {
		return err
	}

	scanner := discovery.NewService(bus, opts)
	defer scanner.StopScan()
	launcher := launch.NewService(launch.NewSystemOpener(), bus)

	model := ui.NewModel(launcher, ui.Options{
		Policy:        cfg.Policy(),
		CloseOnLaunch: cfg.UISettings.CloseOnLaunch,
		MaxVisible:    cfg.UISettings.MaxVisible,
		Placeholder:   cfg.UISettings.Placeholder,
		RequestScan: func() {
			bus.Publish(eventbus.ScanRequestedEvent{Dirs: opts.BaseDirs})
		},
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	done := make(chan struct{})
	defer close(done)

	for _, eventType := range ui.ForwardedEvents {
		unsubscribe := bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				log.Println("Event channel full, dropping event")
			}
		})
		defer unsubscribe()
	}

	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()

	// Start initial scan
	scanner.StartScan(ctx, opts.BaseDirs)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
