/*
Package sync implements the copy run that publishes content into the website
directory.

	            +--------------+
	            | Synchronizer |
	            +------+-------+
	                   |
	      +------------+-----------+
	      |                        |
	+-----+------+          +-----+------+
	|  Answers   |          |   Images   |
	| (one file) |          | (flat dir) |
	+------------+          +------------+

🎯 Purpose:
- Copies the answers artifact if present at the source
- Copies every regular file from the source image directory
- Creates the destination image directory when missing
- Reports each action or skip through the user logger

🔄 Flow:
1. Verify the source root exists (fatal when absent)
2. Copy the answers file, warning and skipping when missing
3. Copy the image set, warning and skipping when the directory is missing
4. Return a Result describing what happened

⚡ Key Behaviors:
- The two steps are independent and best-effort
- Copies are atomic (temp file + rename) and preserve metadata
- Subdirectories inside the image folder are never recursed into
- Re-running with unchanged sources reproduces the same destination state
*/
package sync
