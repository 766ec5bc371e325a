package slackexport

// In this file: partitioning of the fetched data into the on-disk layout:
// channels.json, users.json, and one <channel>/<date>.json per calendar day
// with at least one message.

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"

	"github.com/proelbtn/slack-export-viewer/fsadapter"
	"github.com/proelbtn/slack-export-viewer/internal/slackapi"
)

const dateFmt = "2006-01-02"

// messagesByDate is a mapping of the "2006-01-02" UTC date to the messages
// of that day, in retrieval order.
type messagesByDate map[string][]slackapi.Message

// write persists the export set.  Every channel gets a directory, whether
// or not the session user is a member; date files are written only for the
// channels present in histories.
func (s *Session) write(ctx context.Context, channels []slackapi.Channel, users []slackapi.User, histories map[string][]slackapi.Message) error {
	if err := serializeToFS(s.fs, "channels.json", channels); err != nil {
		return err
	}
	if err := serializeToFS(s.fs, "users.json", users); err != nil {
		return err
	}

	for _, c := range channels {
		if err := s.fs.Mkdir(c.Name); err != nil {
			return fmt.Errorf("channel %s: %w", c.Name, err)
		}
		msgs, ok := histories[c.Name]
		if !ok {
			continue
		}
		mbd, err := s.byDate(msgs)
		if err != nil {
			return fmt.Errorf("channel %s: %w", c.Name, err)
		}
		s.lg.InfoContext(ctx, "writing messages", "channel", c.Name, "days", len(mbd))
		if err := s.saveChannel(c.Name, mbd); err != nil {
			return err
		}
	}
	return nil
}

// byDate buckets the messages by the UTC calendar date of their timestamp,
// keeping the retrieval order within each date.  If a download token is
// configured, the thumbnail URLs of image attachments are rewritten on the
// way.
func (s *Session) byDate(msgs []slackapi.Message) (messagesByDate, error) {
	mbd := make(messagesByDate)
	for i := range msgs {
		if err := appendDownloadToken(&msgs[i], s.downloadToken); err != nil {
			return nil, fmt.Errorf("message %s: %w", msgs[i].Timestamp, err)
		}
		dt, err := parseSlackTS(msgs[i].Timestamp)
		if err != nil {
			return nil, fmt.Errorf("message %s: %w", msgs[i].Timestamp, err)
		}
		key := dt.Format(dateFmt)
		mbd[key] = append(mbd[key], msgs[i])
	}
	return mbd, nil
}

// saveChannel writes one file per date of the channel messages.
func (s *Session) saveChannel(name string, mbd messagesByDate) error {
	for date, msgs := range mbd {
		if err := serializeToFS(s.fs, path.Join(name, date+".json"), msgs); err != nil {
			return err
		}
	}
	return nil
}

// serializeToFS writes the data as a JSON document at filename on fs.
func serializeToFS(fs fsadapter.FS, filename string, data any) error {
	f, err := fs.Create(filename)
	if err != nil {
		return fmt.Errorf("fs: create %s: %w", filename, err)
	}
	defer f.Close()
	return serialize(f, data)
}

func serialize(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
