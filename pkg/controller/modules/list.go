package modules

import (
	"fmt"
	"text/template"
)

// List outputs the modules in the registry order.
func (c *Controller) List() error {
	tmpl, err := c.parseTemplate()
	if err != nil {
		return err
	}
	for _, m := range c.modules.All() {
		info := m.Info()
		if err := c.output(&ModuleInfo{
			Name:       info.Name,
			Title:      info.Title,
			Ecosystem:  info.Ecosystem,
			Command:    info.Command,
			Artifact:   info.Artifact,
			InstallURL: info.InstallURL,
			Installed:  c.checker.CommandExists(info.Command),
		}, tmpl); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) parseTemplate() (*template.Template, error) {
	if c.param.LineTemplate == "" {
		return nil, nil //nolint:nilnil
	}
	tmpl, err := template.New("line").Parse(c.param.LineTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse line template: %w", err)
	}
	return tmpl, nil
}

func (c *Controller) output(info *ModuleInfo, tmpl *template.Template) error {
	if tmpl != nil {
		if err := tmpl.Execute(c.stdout, info); err != nil {
			return fmt.Errorf("execute template: %w", err)
		}
		fmt.Fprintln(c.stdout)
		return nil
	}
	// <Name>,<Ecosystem>,<Command>,<Installed>
	fmt.Fprintf(c.stdout, "%s,%s,%s,%t\n", info.Name, info.Ecosystem, info.Command, info.Installed)
	return nil
}
