package layout

var baseFiles = map[Variant][]FileOp{
	Legacy: join(
		[]FileOp{
			mkdirAll("classes/admin"),
			{Kind: Move, Source: EntrySource},
			move("compat.php"),
			move(LegacyMarker),
		},
		moves("classes", "plugin.php", "main.php", "helpers.php", "singleton.php"),
		moves("classes/admin", "main.php"),
	),
	PSR4: join(
		[]FileOp{
			mkdirAll("classes/Admin"),
			{Kind: Move, Source: EntrySource},
			move("compat.php"),
		},
		moves("classes", "Plugin.php", "Main.php", "Helpers.php", "Singleton.php"),
		moves("classes/Admin", "Main.php"),
	),
}

var componentFiles = map[Variant]map[Component][]FileOp{
	Legacy: {
		Controller: join([]FileOp{mkdir("classes/controllers")}, moves("classes/controllers", "controller.php")),
		Cron:       join([]FileOp{mkdir("classes/cron")}, moves("classes/cron", "cron.php")),
		Model:      join([]FileOp{mkdir("classes/models")}, moves("classes/models", "model.php", "user.php")),
		Route:      join([]FileOp{mkdir("classes/routes")}, moves("classes/routes", "router.php")),
		Widget:     widget("classes/widgets", "main.php"),
		Shortcode: join([]FileOp{mkdir("classes/shortcodes")},
			moves("classes/shortcodes", "shortcode.php", "shortcode-factory.php")),
	},
	PSR4: {
		Controller: join([]FileOp{mkdir("classes/Controllers")}, moves("classes/Controllers", "Controller.php")),
		Cron:       join([]FileOp{mkdir("classes/Cron")}, moves("classes/Cron", "Cron.php")),
		Model:      join([]FileOp{mkdir("classes/Models")}, moves("classes/Models", "Model.php", "User.php")),
		Route:      join([]FileOp{mkdir("classes/Routes")}, moves("classes/Routes", "Router.php")),
		Widget:     widget("classes/Widgets", "Main.php"),
		Shortcode: join([]FileOp{mkdir("classes/Shortcodes")},
			moves("classes/Shortcodes", "Shortcode.php", "Shortcode_Factory.php")),
	},
}

func widget(classDir, classFile string) []FileOp {
	return join(
		[]FileOp{
			mkdir(classDir),
			mkdir("views"),
			mkdir("views/admin"),
			mkdir("views/client"),
		},
		moves(classDir, classFile),
		moves("views/admin", "widget.php"),
		moves("views/client", "widget.php"),
	)
}
