// Package dump prints the raw structure of a PDB file: the header, each
// directory entry and a hex listing of every record payload.
package dump

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/ssargent/palmdoc/pkg/pdb"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const rowSize = 16

// ErrOptions is returned for contradictory or unknown options.
var ErrOptions = errors.New("invalid dump options")

// Options selects what Dump prints.
type Options struct {
	// HeaderOnly prints the database header and directory entries.
	HeaderOnly bool
	// DataOnly prints record payloads without any headers.
	DataOnly bool
	// Format is FormatText (default) or FormatJSON.
	Format string
	// Checksum adds a digest of each record payload.
	Checksum string
}

func (o Options) validate() error {
	if o.HeaderOnly && o.DataOnly {
		return fmt.Errorf("%w: header-only and data-only are mutually exclusive", ErrOptions)
	}
	switch o.Format {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrOptions, o.Format)
	}
	if !ValidChecksum(o.Checksum) {
		return fmt.Errorf("%w: unknown checksum %q", ErrOptions, o.Checksum)
	}
	return nil
}

// Dump writes the structure of the PDB file in rs to w.
func Dump(w io.Writer, rs io.ReadSeeker, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	r, err := pdb.NewReader(rs)
	if err != nil {
		return err
	}

	if opts.Format == FormatJSON {
		return dumpJSON(w, r, opts)
	}
	return dumpText(w, r, opts)
}

func dumpText(w io.Writer, r *pdb.Reader, opts Options) error {
	p := &printer{w: w}

	if !opts.DataOnly {
		h := r.Header()
		p.printf("   Name: %s\n", h.Name)
		p.printf("Version: %d\n", h.Version)
		p.printf("   Type: %s\n", printable(h.Type[:]))
		p.printf("Creator: %s\n", printable(h.Creator[:]))
		if h.Created != 0 {
			p.printf("Created: %s\n", h.Created.Time().Format(time.RFC3339))
		}
		if h.Modified != 0 {
			p.printf("Modified: %s\n", h.Modified.Time().Format(time.RFC3339))
		}
		p.printf("Records: %d\n", h.NumRecords)
	}

	for i := 0; i < r.NumEntries(); i++ {
		entry, err := r.Entry(i)
		if err != nil {
			return err
		}

		if !opts.DataOnly {
			p.printf("===================================================================\n")
			p.printf("Rec %4d: [%s] Delete [%s] Dirty [%s] Busy [%s] Secret\n", i,
				mark(entry.Attributes.Has(pdb.Delete)), mark(entry.Attributes.Has(pdb.Dirty)),
				mark(entry.Attributes.Has(pdb.Busy)), mark(entry.Attributes.Has(pdb.Secret)))
			p.printf("-------------------------------------------------------------------\n")
		}
		if opts.HeaderOnly {
			continue
		}

		data, err := r.Record(i)
		if err != nil {
			return err
		}
		if opts.Checksum != ChecksumNone {
			p.printf("%s: %s\n", opts.Checksum, checksum(data, opts.Checksum))
		}
		for off := 0; off < len(data); off += rowSize {
			end := min(off+rowSize, len(data))
			p.row(entry.Offset+uint32(off), data[off:end])
		}
	}

	return p.err
}

func mark(set bool) string {
	if set {
		return "X"
	}
	return " "
}

func printable(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c >= 0x20 && c < 0x7F {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// printer keeps the first write error so the dump loop stays readable.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// row prints one hex line: offset, hex pairs grouped by two bytes, then
// the bytes as ASCII.
func (p *printer) row(offset uint32, data []byte) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%08X:", offset)
	for i := 0; i < rowSize; i++ {
		if i%2 == 0 {
			sb.WriteByte(' ')
		}
		if i < len(data) {
			fmt.Fprintf(&sb, "%02X", data[i])
		} else {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("  ")
	sb.WriteString(printable(data))
	sb.WriteByte('\n')
	p.printf("%s", sb.String())
}

type jsonHeader struct {
	Name       string     `json:"name"`
	Attributes uint16     `json:"attributes"`
	Version    uint16     `json:"version"`
	Type       string     `json:"type"`
	Creator    string     `json:"creator"`
	Created    *time.Time `json:"created,omitempty"`
	Modified   *time.Time `json:"modified,omitempty"`
	NumRecords uint16     `json:"num_records"`
}

type jsonRecord struct {
	Index    int      `json:"index"`
	Offset   uint32   `json:"offset"`
	Size     int64    `json:"size"`
	Flags    []string `json:"flags"`
	Category uint8    `json:"category"`
	UniqueID uint32   `json:"unique_id"`
	Checksum string   `json:"checksum,omitempty"`
	Data     string   `json:"data,omitempty"`
}

type jsonDump struct {
	Header  *jsonHeader  `json:"header,omitempty"`
	Records []jsonRecord `json:"records"`
}

func palmTime(t pdb.PalmTime) *time.Time {
	if t == 0 {
		return nil
	}
	tt := t.Time()
	return &tt
}

func dumpJSON(w io.Writer, r *pdb.Reader, opts Options) error {
	out := jsonDump{Records: []jsonRecord{}}

	if !opts.DataOnly {
		h := r.Header()
		out.Header = &jsonHeader{
			Name:       h.Name,
			Attributes: h.Attributes,
			Version:    h.Version,
			Type:       printable(h.Type[:]),
			Creator:    printable(h.Creator[:]),
			Created:    palmTime(h.Created),
			Modified:   palmTime(h.Modified),
			NumRecords: h.NumRecords,
		}
	}

	for i := 0; i < r.NumEntries(); i++ {
		entry, err := r.Entry(i)
		if err != nil {
			return err
		}
		_, size, err := r.Bounds(i)
		if err != nil {
			return err
		}

		rec := jsonRecord{
			Index:    i,
			Offset:   entry.Offset,
			Size:     size,
			Flags:    entry.Attributes.Flags(),
			Category: entry.Attributes.Category(),
			UniqueID: entry.UniqueID,
		}

		if !opts.HeaderOnly {
			data, err := r.Record(i)
			if err != nil {
				return err
			}
			rec.Checksum = checksum(data, opts.Checksum)
			rec.Data = hex.EncodeToString(data)
		}
		out.Records = append(out.Records, rec)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
