package main

// Options is the root command. The struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	LogPath string `long:"log-path" description:"journal file (overrides CREATIONAL_LOG_PATH)"`
	Catalog string `long:"catalog" description:"YAML prototype catalog (overrides CREATIONAL_CATALOG)"`

	AbstractFactory AbstractFactoryCmd `command:"abstract-factory" description:"Render controls from a platform widget factory"`
	Builder         BuilderCmd         `command:"builder" description:"Direct a sports car and an SUV build"`
	FactoryMethod   FactoryMethodCmd   `command:"factory-method" description:"Assemble vehicles through factory methods"`
	Prototype       PrototypeCmd       `command:"prototype" description:"Clone catalog vehicles and modify the clones"`
	Singleton       SingletonCmd       `command:"singleton" description:"Write the application lifecycle to the shared journal"`
	All             AllCmd             `command:"all" description:"Run every demo"`
}

// bind gives every command access to the application.
func (o *Options) bind(a *app) {
	o.AbstractFactory.app = a
	o.Builder.app = a
	o.FactoryMethod.app = a
	o.Prototype.app = a
	o.Singleton.app = a
	o.All.app = a
}

// AbstractFactoryCmd runs the abstract factory demo.
type AbstractFactoryCmd struct {
	OS  string `long:"os" description:"platform: windows or mac (default CREATIONAL_OS)"`
	app *app
}

func (c *AbstractFactoryCmd) Execute(_ []string) error {
	r, err := c.app.runner.Get()
	if err != nil {
		return err
	}
	return r.AbstractFactory(c.app.platform(c.OS))
}

// BuilderCmd runs the builder demo.
type BuilderCmd struct {
	app *app
}

func (c *BuilderCmd) Execute(_ []string) error {
	r, err := c.app.runner.Get()
	if err != nil {
		return err
	}
	return r.Builder()
}

// FactoryMethodCmd runs the factory method demo.
type FactoryMethodCmd struct {
	app *app
}

func (c *FactoryMethodCmd) Execute(_ []string) error {
	r, err := c.app.runner.Get()
	if err != nil {
		return err
	}
	return r.FactoryMethod()
}

// PrototypeCmd runs the prototype demo.
type PrototypeCmd struct {
	app *app
}

func (c *PrototypeCmd) Execute(_ []string) error {
	r, err := c.app.runner.Get()
	if err != nil {
		return err
	}
	return r.Prototype()
}

// SingletonCmd runs the singleton demo.
type SingletonCmd struct {
	app *app
}

func (c *SingletonCmd) Execute(_ []string) error {
	r, err := c.app.runner.Get()
	if err != nil {
		return err
	}
	return r.Singleton()
}

// AllCmd runs every demo.
type AllCmd struct {
	OS  string `long:"os" description:"platform for the abstract factory demo"`
	app *app
}

func (c *AllCmd) Execute(_ []string) error {
	r, err := c.app.runner.Get()
	if err != nil {
		return err
	}
	return r.All(c.app.platform(c.OS))
}
