package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/ordigital/spotled-gui/internal/imaging"
	"github.com/ordigital/spotled-gui/internal/models"
	"github.com/ordigital/spotled-gui/internal/spotled"
)

const projectExtension = ".json"

// HandleNewProject discards the session and starts over with one blank
// frame.
func (h *Handlers) HandleNewProject() {
	dialog.ShowConfirm("New Project", "Discard the current animation?", func(ok bool) {
		if !ok {
			return
		}
		h.cancelPlacement()
		h.stopPlayback()
		h.doc = models.NewDocument()
		h.history.Reset()
		h.gui.TextPanel().SetText("")
		h.setProjectPath("")
		h.refresh()
		h.gui.UpdateStatus("New project")
	}, h.window)
}

// HandleImageImport opens an image file and starts the placement overlay.
func (h *Handlers) HandleImageImport() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.showError("Image Import Error", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		h.gui.UpdateStatus("Loading image...")
		go func() {
			buf, loadErr := imaging.LoadFile(path)
			fyne.Do(func() {
				if loadErr != nil {
					h.gui.UpdateStatus("Ready")
					h.showError("Image Import Error", loadErr)
					return
				}
				h.beginPlacement(buf)
			})
		}()
	}, h.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".gif", ".jpg", ".jpeg", ".bmp"}))
	h.setStartLocation(fd.SetLocation)
	fd.Show()
}

// HandleProjectSave writes the session to a project file.
func (h *Handlers) HandleProjectSave() {
	if h.refusePlacement() {
		return
	}
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			h.showError("Project Save Error", err)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		project := h.collectProject()
		if err := project.Save(writer); err != nil {
			h.showError("Project Save Error", err)
			return
		}
		h.rememberProjectDir(writer.URI().Path())
		h.setProjectPath(writer.URI().Path())
		h.gui.UpdateStatus("Project saved")
		h.log.Info("Project", "saved", map[string]interface{}{
			"path":   writer.URI().Path(),
			"frames": h.doc.FrameCount(),
		})
	}, h.window)
	fd.SetFileName("animation" + projectExtension)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{projectExtension}))
	h.setStartLocation(fd.SetLocation)
	fd.Show()
}

// HandleProjectLoad replaces the session with a project file.
func (h *Handlers) HandleProjectLoad() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			h.showError("Project Load Error", err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		project, err := models.LoadProject(reader)
		if err != nil {
			h.showError("Project Load Error", err)
			return
		}
		h.applyProject(project)
		h.rememberProjectDir(reader.URI().Path())
		h.setProjectPath(reader.URI().Path())
		h.gui.UpdateStatus("Project loaded")
		h.log.Info("Project", "loaded", map[string]interface{}{
			"path":   reader.URI().Path(),
			"frames": h.doc.FrameCount(),
		})
	}, h.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{projectExtension}))
	h.setStartLocation(fd.SetLocation)
	fd.Show()
}

func (h *Handlers) collectProject() *models.Project {
	textPanel := h.gui.TextPanel()
	return &models.Project{
		Version:      models.ProjectVersion,
		Tab:          h.gui.SelectedTab(),
		CurrentFrame: h.doc.CurrentIndex(),
		Image: models.ImageSection{
			Frames: models.EncodeFrames(h.doc.Frames()),
			Effect: h.gui.ImageEffects().Effect().String(),
			Speed:  h.gui.ImageEffects().Speed(),
		},
		Text: models.TextSection{
			Content:  textPanel.Text(),
			Effect:   textPanel.EffectRow().Effect().String(),
			Speed:    textPanel.EffectRow().Speed(),
			TwoLines: textPanel.TwoLines(),
		},
	}
}

func (h *Handlers) applyProject(project *models.Project) {
	h.cancelPlacement()
	h.stopPlayback()

	frames, err := models.DecodeFrames(project.Image.Frames)
	if err != nil {
		// LoadProject already validated; this only fires on programmatic
		// misuse.
		h.showError("Project Load Error", err)
		return
	}
	h.doc.SetFrames(frames, project.CurrentFrame)
	h.history.Reset()

	h.gui.ImageEffects().SetEffect(spotled.ParseEffect(project.Image.Effect))
	h.gui.ImageEffects().SetSpeed(project.Image.Speed)

	textPanel := h.gui.TextPanel()
	textPanel.SetText(project.Text.Content)
	textPanel.EffectRow().SetEffect(spotled.ParseEffect(project.Text.Effect))
	textPanel.EffectRow().SetSpeed(project.Text.Speed)
	textPanel.SetTwoLines(project.Text.TwoLines)

	h.gui.SelectTab(project.Tab)
	h.refresh()
}

// setStartLocation points a file dialog at the last used project directory.
func (h *Handlers) setStartLocation(set func(fyne.ListableURI)) {
	dir := h.settings.ProjectDir()
	if dir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		h.log.Debug("Project", "stale project directory", map[string]interface{}{
			"dir":   dir,
			"error": fmt.Sprintf("%v", err),
		})
		return
	}
	set(lister)
}

// setProjectPath records the active project file and mirrors it in the
// window title.
func (h *Handlers) setProjectPath(path string) {
	h.projectPath = path
	if path == "" {
		h.window.SetTitle(AppName)
		return
	}
	h.window.SetTitle(AppName + " - " + filepath.Base(path))
}

func (h *Handlers) rememberProjectDir(path string) {
	if strings.TrimSpace(path) == "" {
		return
	}
	h.settings.SetProjectDir(filepath.Dir(path))
}
