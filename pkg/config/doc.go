/*
Package config loads and validates textscrub settings.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |   HCL   |   |  JSON   |
	| Parser  |   | Parser  |   | Parser  |
	+---------+   +---------+   +---------+

Every parser decodes on top of Default, so a file only has to name what it
changes. Setting a table to an empty list in YAML or JSON disables it.

	root      = "./lib"
	extension = ".dart"
	exclude   = ["generated/**", "lib/l10n/**"]

	tag {
	  from = "[WIP]"
	}

	separator {
	  from = default_separator
	  to   = "// ----"
	}

Validate compiles the content pipeline, so an invalid cleanup pattern or an
empty replacement key is reported at load time rather than halfway through a
batch.
*/
package config
