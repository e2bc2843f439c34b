/*
Package config manages configuration parsing and validation for sitesync.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   YAML    |           |   HCL   |
	| Parser    |           | Parser  |
	+-----------+           +---------+

🎯 Purpose:
- Loads configuration from YAML or HCL files
- Validates configuration values
- Resolves defaults from the location of the running binary

🔄 Flow:
1. Reads configuration from file (optional — the tool runs with no config)
2. Parses format-specific syntax through the registered parser
3. Validates values and cleans paths
4. Fills unset fields from executable-relative defaults

📝 Defaults:
- destination: the directory containing the executable
- source: the destination's sibling directory named "Historia"
- answers_file: "correct_answers.json"
- images_dir: "images"
*/
package config
