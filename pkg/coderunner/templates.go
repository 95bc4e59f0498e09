package coderunner

// DefaultHTML is the HTML buffer a fresh workspace starts with.
const DefaultHTML = `<div class="container">
    <header>
        <h1>Welcome to Code Runner!</h1>
        <p>Edit the HTML and CSS to see live changes</p>
    </header>

    <main>
        <section class="card">
            <h2>Getting Started</h2>
            <p>This is a simple HTML/CSS IDE. You can:</p>
            <ul>
                <li>Edit HTML in the left panel</li>
                <li>Edit CSS in the right panel</li>
                <li>See live preview below</li>
                <li>Download your code</li>
            </ul>
        </section>

        <section class="card">
            <h2>Features</h2>
            <div class="feature-grid">
                <div class="feature">
                    <h3>Live Editing</h3>
                    <p>See changes instantly</p>
                </div>
                <div class="feature">
                    <h3>Export Options</h3>
                    <p>Download HTML, CSS, or combined</p>
                </div>
                <div class="feature">
                    <h3>Flexible Layout</h3>
                    <p>Choose your preferred layout</p>
                </div>
            </div>
        </section>
    </main>

    <footer>
        <p>&copy; 2025 Code Runner IDE</p>
    </footer>
</div>`

// DefaultCSS is the CSS buffer a fresh workspace starts with.
const DefaultCSS = `/* Reset and Base Styles */
* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
    line-height: 1.6;
    color: #333;
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    min-height: 100vh;
}

.container {
    max-width: 1200px;
    margin: 0 auto;
    padding: 2rem;
}

header {
    text-align: center;
    margin-bottom: 3rem;
    color: white;
}

header h1 {
    font-size: 3rem;
    margin-bottom: 1rem;
    text-shadow: 2px 2px 4px rgba(0,0,0,0.3);
}

main {
    display: grid;
    gap: 2rem;
    margin-bottom: 3rem;
}

.card {
    background: rgba(255, 255, 255, 0.95);
    border-radius: 15px;
    padding: 2rem;
    box-shadow: 0 10px 30px rgba(0,0,0,0.1);
}

.card h2 {
    color: #2c3e50;
    margin-bottom: 1rem;
    font-size: 1.8rem;
}

.feature-grid {
    display: grid;
    grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
    gap: 1.5rem;
    margin-top: 2rem;
}

.feature {
    background: rgba(103, 126, 234, 0.1);
    padding: 1.5rem;
    border-radius: 10px;
    text-align: center;
    border: 1px solid rgba(103, 126, 234, 0.2);
}

.feature h3 {
    color: #667eea;
    margin-bottom: 1rem;
    font-size: 1.2rem;
}

footer {
    text-align: center;
    color: rgba(255, 255, 255, 0.8);
    padding: 2rem 0;
    border-top: 1px solid rgba(255, 255, 255, 0.2);
}

@media (max-width: 768px) {
    .container {
        padding: 1rem;
    }

    header h1 {
        font-size: 2rem;
    }

    .feature-grid {
        grid-template-columns: 1fr;
    }
}`

const placeholderPython = `# Python Code Runner (Coming Soon)
def hello_world():
    print("Hello from Python!")

def fibonacci(n):
    if n <= 1:
        return n
    return fibonacci(n-1) + fibonacci(n-2)

if __name__ == "__main__":
    hello_world()

    print("Fibonacci sequence:")
    for i in range(10):
        print(f"F({i}) = {fibonacci(i)}")`

const placeholderJava = `// Java Code Runner (Coming Soon)
public class HelloWorld {
    public static void main(String[] args) {
        System.out.println("Hello from Java!");

        int number = 5;
        long factorial = calculateFactorial(number);
        System.out.println("Factorial of " + number + " is: " + factorial);
    }

    public static long calculateFactorial(int n) {
        if (n <= 1) {
            return 1;
        }
        return n * calculateFactorial(n - 1);
    }
}`

const placeholderCPP = `// C++ Code Runner (Coming Soon)
#include <iostream>
#include <vector>
using namespace std;

int main() {
    cout << "Hello from C++!" << endl;

    vector<int> numbers = {1, 2, 3, 4, 5};

    int sum = 0;
    for (int num : numbers) {
        sum += num;
    }
    cout << "Sum: " << sum << endl;

    return 0;
}`
