/*
Package log provides global output control across the whole of zonecheck. Logging comes
in four levels: Silent, Major, Minor and Debug with each level more detailed than the
previous. Levels are inclusive, so, e.g., if MinorLevel is set that implies MajorLevel
logging.

The check results themselves are not logging. They are written by the report package to
whatever io.Writer the caller chooses, normally Out(), regardless of level.

The Print and Printf style interfaces are similar to the fmt versions with a few subtle
differences due to the need to prefix lines. If the resulting string contains multiple
lines they are all printed with the prefix for the logging level and a trailing newline
is not needed as excess ones are trimmed.

Tests capture output by handing SetOut() a mock.IOWriter.
*/
package log
