package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"livetv/internal/formatter"
	"livetv/internal/models"
	"livetv/internal/player"
	"livetv/internal/query"
	"livetv/internal/shared"
)

// fieldsFromFlags captures the channel field flags shared by add and update.
func fieldsFromFlags(cmd *cli.Command) models.Fields {
	return models.Fields{
		Name:        cmd.String("name"),
		URL:         cmd.String("url"),
		Type:        models.ChannelType(cmd.String("type")),
		Category:    cmd.String("category"),
		Description: cmd.String("description"),
		Status:      models.ChannelStatus(cmd.String("status")),
	}
}

// channelIDArg parses the required positional channel id.
func channelIDArg(cmd *cli.Command) (int, error) {
	raw := cmd.StringArg("id")
	if raw == "" {
		return 0, fmt.Errorf("%w: channel id", shared.ErrMissingArgument)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: channel id must be an integer, got %q", shared.ErrInvalidArgument, raw)
	}
	return id, nil
}

// ChannelAdd creates a new channel from the field flags.
func (r *Runner) ChannelAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.load(ctx); err != nil {
		return err
	}

	channel, err := r.store.Add(fieldsFromFlags(cmd))
	if err != nil {
		return err
	}

	r.logger.Info("channel added", "id", channel.ID, "name", channel.Name)
	r.writePlainln("✓ Added channel #%d: %s", channel.ID, channel.Name)
	return nil
}

// ChannelList prints the (optionally filtered) channel table.
func (r *Runner) ChannelList(ctx context.Context, cmd *cli.Command) error {
	if err := r.load(ctx); err != nil {
		return err
	}

	channels := query.Filter(r.store.List(), query.Filters{
		Search:   cmd.String("search"),
		Category: cmd.String("category"),
		Type:     cmd.String("type"),
	})

	switch {
	case cmd.Bool("json"):
		return r.writeJSON(channels, cmd.Bool("pretty"))
	case cmd.Bool("csv"):
		data, err := formatter.ToCSV(channels)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	case cmd.Bool("markdown"):
		return r.writePlain("%s", formatter.ToMarkdown(channels))
	default:
		return r.writePlain("%s", formatter.ToText(channels))
	}
}

// ChannelShow prints one channel with its resolved embed and share URLs.
func (r *Runner) ChannelShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.load(ctx); err != nil {
		return err
	}

	id, err := channelIDArg(cmd)
	if err != nil {
		return err
	}

	channel, err := r.store.Get(id)
	if err != nil {
		return err
	}

	embedURL := player.ToEmbedURL(channel.URL, channel.Type)
	shareBase := fmt.Sprintf("http://%s/watch", r.config.Server.Addr())

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{
			"channel":  channel,
			"embedUrl": embedURL,
			"shareUrl": player.ShareURL(shareBase, channel.ID),
		}, true)
	}

	r.writePlain("#%d %s [%s]\n", channel.ID, channel.Name, channel.Status)
	r.writePlain("  Type:     %s\n", channel.Type)
	r.writePlain("  Category: %s\n", channel.Category)
	if channel.Description != "" {
		r.writePlain("  About:    %s\n", channel.Description)
	}
	r.writePlain("  Source:   %s\n", channel.URL)
	r.writePlain("  Stream:   %s\n", embedURL)
	r.writePlain("  Share:    %s\n", player.ShareURL(shareBase, channel.ID))
	return nil
}

// ChannelUpdate merges the provided field flags onto an existing channel.
func (r *Runner) ChannelUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.load(ctx); err != nil {
		return err
	}

	id, err := channelIDArg(cmd)
	if err != nil {
		return err
	}

	channel, err := r.store.Update(id, fieldsFromFlags(cmd))
	if err != nil {
		return err
	}

	r.logger.Info("channel updated", "id", channel.ID, "name", channel.Name)
	r.writePlainln("✓ Updated channel #%d: %s", channel.ID, channel.Name)
	return nil
}

// ChannelDelete removes a channel by id.
func (r *Runner) ChannelDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.load(ctx); err != nil {
		return err
	}

	id, err := channelIDArg(cmd)
	if err != nil {
		return err
	}

	if err := r.store.Remove(id); err != nil {
		return err
	}

	r.logger.Info("channel deleted", "id", id)
	r.writePlainln("✓ Deleted channel #%d", id)
	return nil
}
