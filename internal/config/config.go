// Package config defines the agent settings, read from environment
// variables and validated before anything touches the network.
package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Client   Client
	Update   Update
	PubIP    PubIP
	Paths    Paths
	Logger   Logger
	Shoutrrr Shoutrrr
	Health   Health
}

func (c *Config) Read(reader *reader.Reader) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	c.Update.read(reader)

	err = c.PubIP.read(reader)
	if err != nil {
		return fmt.Errorf("reading public IP settings: %w", err)
	}

	err = c.Paths.read(reader)
	if err != nil {
		return fmt.Errorf("reading paths settings: %w", err)
	}

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader)
	c.Health.read(reader)

	return nil
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.Update.setDefaults()
	c.PubIP.setDefaults()
	c.Paths.setDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
	c.Health.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"client":    &c.Client,
		"update":    &c.Update,
		"public ip": &c.PubIP,
		"paths":     &c.Paths,
		"logger":    &c.Logger,
		"shoutrrr":  &c.Shoutrrr,
		"health":    &c.Health,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Update.toLinesNode())
	node.AppendNode(c.PubIP.toLinesNode())
	node.AppendNode(c.Paths.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	if shoutrrrNode := c.Shoutrrr.toLinesNode(); shoutrrrNode != nil {
		node.AppendNode(shoutrrrNode)
	}
	if healthNode := c.Health.toLinesNode(); healthNode != nil {
		node.AppendNode(healthNode)
	}
	return node
}
