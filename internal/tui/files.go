package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	"go.uber.org/zap"

	"geotrack/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.setError("read dir error: " + err.Error())
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if geom.SupportedExt(ext) {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.setStatus("no seed files in current directory")
	}
}

// loadPath fills the form from a seed file. The map only changes on the next submit.
func (m *Model) loadPath(p string) {
	locs, err := geom.LoadPath(p)
	if err != nil {
		m.setError("load error: " + err.Error())
		m.log.Warn("seed load failed", zap.String("path", p), zap.Error(err))
		return
	}
	n := m.seed(locs)
	m.log.Info("seed loaded", zap.String("path", p), zap.Int("points", len(locs)), zap.Int("used", n))
	m.setStatus(fmt.Sprintf("loaded %d of %d points from %s; enter to render", n, len(locs), filepath.Base(p)))
}
