// Package fuzztests houses Go fuzz harnesses for the word matchers and the
// file classifier. They look for panics, out-of-range spans and
// disagreements between the automaton and the combinator chain.
//
// Назначение: прогонять произвольные байты через keyword и driver.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
